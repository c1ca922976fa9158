// Package colladarender renders 3D mesh scenes (COLLADA, glTF, STL, OBJ, and PLY files) as top-down elevation maps:
// every triangle is projected straight down onto the X/Z plane and colored by its height, with higher triangles drawn
// over lower ones.
//
// The quickest way in is Render(), which loads files, renders them, and saves a PNG:
//
//	err := colladarender.Render("renderings/level.png", []string{"level.dae"}, nil)
//
// LoadScene() and RenderScene() split that into steps, and RenderOptions tweaks scale, colors, and so on.
package colladarender
