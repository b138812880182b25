// Package logs reads the stagehand process log back for the logs command.
// It tails the file directly so the command works without any long-running
// process, and tolerates the file not existing yet.
package logs
