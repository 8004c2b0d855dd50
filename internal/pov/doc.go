// Package pov writes a resolved scene out as a POV-Ray input file. The
// scene file is produced from a single embedded template, so the
// whole surface of the generated file can be reviewed in one place.
package pov
