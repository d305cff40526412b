package main

// General API documentation for swaggo. Run `swag init` to generate docs.
//
// @title           educatord API
// @version         1.0
// @description     HTTP API for educational content generation backed by a local causal LM.
//
// @BasePath  /
//
// @schemes http
