// Command stagehand is the artist-facing CLI for the pipeline directory
// tree. It creates and lists branches, encodes scene file names, launches
// program scenes through the studio's launcher scripts, and reports on the
// environment the pipeline depends on.
package main
