// Package scene encodes versioned scene file names and reconstructs
// task records by decoding a program's scene directory.
//
// A scene name is show_group_unit_part_task_version + extension. The
// category level is deliberately absent from the encoding; the last
// underscore token is always the version, so task names may themselves
// contain underscores.
package scene
