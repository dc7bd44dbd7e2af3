package main

import "eventmanagement/cmd/server/cmd"

// @title Event Management API
// @version 1.0
// @description Form endpoints for contact messages, account registration and login, and event invitations.
// @description Successful submissions answer with a 302 redirect; failures answer with a plaintext body.
// @BasePath /
func main() {
	cmd.Execute()
}
