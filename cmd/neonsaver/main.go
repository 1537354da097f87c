package main

import "neonsaver/internal/saver"

func main() {
	saver.RunDesktop()
}
