package main

import "github.com/castlog/catalogue-api/cmd"

// @title           Podcast Catalogue API
// @version         1.0.0
// @description     A podcast cataloguing and social API with reviews and playlists
// @host            localhost:8080
// @BasePath        /
// @schemes         http https
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cmd.Execute()
}
