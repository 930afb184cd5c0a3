package main

// General API documentation for swaggo. Run `swag init` to generate docs.
//
// @title           quotactl API
// @version         1.0
// @description     Availability report API for Azure OpenAI quota scans.
//
// @contact.name   quotactl maintainers
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http
