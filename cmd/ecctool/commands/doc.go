// Package commands defines the ecctool CLI.
//
// Commands
//
//   - curves       List the curve table
//   - reduce       Reduce an integer modulo a curve's p or q
//   - compress     Encode affine Edwards coordinates
//   - decompress   Decode and validate an Edwards point encoding
//   - selftest     Check the engine against independent implementations
//
// # Configuration
//
// Settings come from ecctool.yaml in the working directory or
// $HOME/.ecctool (or the file named by --config). ECCTOOL_ environment
// variables, with dots replaced by underscores, override the file, and
// flags override both. Keys:
//
//	log.format         console, json or logfmt
//	log.level          zap level name
//	selftest.samples   random inputs per reduction check
//	selftest.seed      fixed seed, 0 for random
//	selftest.curves    curves to check, empty for all
//	metrics.file       write self-test metrics here in text format
package commands
