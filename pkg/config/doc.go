/*
Package config manages configuration parsing and validation for jsxfix.

	            +-------------+
	            |   Config    |
	            | (Settings)  |
	            +------+------+
	                   |
	      +-----------+-----------+-----------+
	      |           |           |           |
	+-----+-----+ +---+---+ +-----+-----+ +---+---+
	|  Defaults | |  YAML | |   JSON    | |  HCL  |
	+-----------+ +-------+ +-----------+ +-------+

🎯 Purpose:
- Holds the hardcoded targets and window bounds as defaults
- Optionally overrides them from a config file
- Validates window bounds and labels

The fixchevrons and fixlayout binaries never read a file: they run with
Default(). Only the jsxfix CLI looks for a config file, and a missing
.jsxfix.yaml is fine unless --config was given explicitly.

🔍 Example:

	# .jsxfix.yaml
	root: ../mobile
	backup: true
	chevron:
	  marker_window: 120
	  strict: true
	layout:
	  exception_first: true

	# .jsxfix.hcl
	chevron {
	  marker_window = defaults.marker_window + 20
	}
*/
package config
