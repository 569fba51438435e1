//go:build !linux

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Println("gpiotest needs the Linux GPIO character device")
	os.Exit(1)
}
