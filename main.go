package main

import (
	"os"

	"perfumeHelper/pkg/cmd"
	"perfumeHelper/pkg/errs"

	"github.com/joho/godotenv"
)

var envFiles = []string{".env.default", ".env.secret", ".env.local"}

func main() {
	err := godotenv.Overload(existingFiles(envFiles)...)
	errs.Handle(err, true)

	err = cmd.Execute()
	if err != nil {
		errs.Handle(err, false)
		os.Exit(1)
	}
}

func existingFiles(paths []string) []string {
	res := []string{}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			res = append(res, p)
		}
	}

	return res
}
