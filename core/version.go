package core

// Set at build time with -ldflags "-X github.com/jmigpin/formlayout/core.Version=...".
var Version = "0.1"
