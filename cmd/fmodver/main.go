package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/fmod-go/fmod-go/pkg/fmod"
)

func main() {
	log.Printf("wrapper targets engine version %s", fmod.VersionString(fmod.Version))

	sys, err := fmod.NewSystem()
	if err != nil {
		if errors.Is(err, fmod.ErrNotBuilt) {
			fmt.Printf("engine unavailable: %v\n", err)
			return
		}
		log.Fatalf("unexpected failure creating system: %v", err)
	}
	defer sys.Release()

	v, err := sys.LibVersion()
	if err != nil {
		log.Fatalf("query runtime version: %v", err)
	}
	fmt.Printf("runtime engine version %s\n", fmod.VersionString(v))
}
