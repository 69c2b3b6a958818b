package noprint

import (
	"fmt"
	"os"
)

func report() {
	fmt.Println("hello")  // want "fmt.Println is forbidden outside package main"
	fmt.Printf("%d\n", 1) // want "fmt.Printf is forbidden outside package main"
	fmt.Print("hi")       // want "fmt.Print is forbidden outside package main"
}

func allowed() {
	fmt.Fprintln(os.Stderr, "writers are fine")
	_ = fmt.Sprintf("%d", 2)
}
