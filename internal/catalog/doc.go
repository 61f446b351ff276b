// Package catalog names the demo models the synth command can generate and
// prepares an engine for them.
//
// Model names are "<package>.<Type>", e.g. "store.Person". Setup registers
// the constructors and map strategies the warehouse models need:
//
//   - warehouse.Dimensions has only unexported fields and is built through
//     warehouse.NewDimensions;
//   - warehouse.Carrier is an interface served by warehouse.NewDrone, which
//     declines short range drones, with warehouse.NewTruck as the fallback;
//   - map[string]string labels get an explicit map strategy.
package catalog
