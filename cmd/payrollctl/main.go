package main

import "payroll/internal/cli"

func main() {
	cli.Execute()
}
