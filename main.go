package main

import "github.com/Tanvi3004/Multimodal-Emotion-Recognition-Chatbot/cmd"

func main() {
	cmd.Execute()
}
