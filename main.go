package main

import "github.com/iksnae/wechat-image-archiver/cmd"

func main() {
	cmd.Execute()
}
