package internal

import (
	"context"
	"fmt"
	"strings"

	"github.com/shirou/gopsutil/v3/process"
)

// weChatProcessNames are the executable names of the desktop client
var weChatProcessNames = []string{"wechat.exe", "wechat", "weixin.exe", "weixin"}

// ProcessInfo describes a running WeChat client
type ProcessInfo struct {
	PID  int32
	Name string
}

type processLister func(ctx context.Context) ([]ProcessInfo, error)

func listProcesses(ctx context.Context) ([]ProcessInfo, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("list processes: %w", err)
	}
	out := make([]ProcessInfo, 0, len(procs))
	for _, p := range procs {
		name, err := p.NameWithContext(ctx)
		if err != nil {
			continue
		}
		out = append(out, ProcessInfo{PID: p.Pid, Name: name})
	}
	return out, nil
}

// FindWeChatProcess looks for a running WeChat client
func FindWeChatProcess(ctx context.Context) (ProcessInfo, bool, error) {
	return findWeChatProcess(ctx, listProcesses)
}

func findWeChatProcess(ctx context.Context, list processLister) (ProcessInfo, bool, error) {
	procs, err := list(ctx)
	if err != nil {
		return ProcessInfo{}, false, err
	}
	for _, p := range procs {
		name := strings.ToLower(p.Name)
		for _, want := range weChatProcessNames {
			if name == want {
				return p, true, nil
			}
		}
	}
	return ProcessInfo{}, false, nil
}
