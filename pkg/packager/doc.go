// Package packager runs the packaging pipeline.
//
// A run resolves the declarations against the working root, builds the
// packaging plan, optionally prints it, rolls prepack directories into
// nested archives, assembles the final archive through the tree filter,
// removes the nested archives and reports the size of the result:
//
//	Resolving -> PlanBuilt -> Prepackaging -> Assembling -> CleaningUp -> Done
//
// Resolving, Prepackaging and Assembling may end the run in Failed. Every
// failure is returned as a coded *errors.PackagerError.
package packager
