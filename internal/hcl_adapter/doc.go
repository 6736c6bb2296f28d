// Package hcl_adapter implements config.Loader for HCL map files.
//
// A map file declares cities and, optionally, named trips:
//
//	city "A" {
//	  neighbors = ["B", "C"]
//	}
//
//	trip "to_d" {
//	  start    = "A"
//	  goal     = "D"
//	  strategy = "first"
//	}
//
// The order of the neighbors list is preserved exactly; it is the order in
// which the default strategy considers moves.
package hcl_adapter
