package prims

import "github.com/joy-lang/joy/internal/joydict"

// RegisterAll installs every primitive family into d. Called once at
// startup before any user program runs (§4.4: the dictionary is seeded
// with natives before the first user definition can shadow one).
func RegisterAll(d *joydict.Dictionary) {
	registerStackOps(d)
	registerArith(d)
	registerMath(d)
	registerCompare(d)
	registerLogic(d)
	registerAggregate(d)
	registerCombinators(d)
	registerRecursion(d)
	registerTypePred(d)
	registerReflection(d)
	registerIO(d)
	registerSysctl(d)
}
