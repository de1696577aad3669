package main

import "github.com/mjdavy/mandelbrot/cmd"

func main() {
	cmd.Execute()
}
