package main

//go:generate swag init -g cmd/planner/main.go -o docs

// @title           Port Planner API
// @version         0.1.0
// @description     Demand scenarios, terminal investment simulation runs, and cash-flow reporting.
// @host            localhost:8080
// @BasePath        /
// @schemes         http
