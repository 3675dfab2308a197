package main

import "github.com/cutroom/timeline-api/cmd"

// @title           Scene Timeline API
// @version         1.0.0
// @description     Scene timeline composition and playback API with live editing sessions
// @contact.name    API Support
// @contact.url     https://github.com/cutroom/timeline-api
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8080
// @BasePath        /
// @schemes         http
func main() {
	cmd.Execute()
}
