// Package scene turns a chemical structure and the resolved options into
// renderable POV-Ray primitives: the camera placement, an area light
// source, one sphere per atom, cylinders for the bonds (with multiple
// bonds nudged apart and partial bonds dashed), and an optional set of
// coordinate axes for tuning the camera parameters. The package knows
// nothing about the scene file syntax; it only produces the data that
// the pov package renders.
package scene
