package main

import (
	"github.com/joho/godotenv"
	"github.com/y-okubo/llmstxt/cmd"
)

func main() {
	godotenv.Load(".env")

	err := cmd.NewRootCommand().CobraCommand.Execute()
	if err != nil {
		panic(err)
	}
}
