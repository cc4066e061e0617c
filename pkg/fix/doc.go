/*
Package fix holds the two fixed rule sets jsxfix knows how to apply.

	        +-------------+
	        |     Fix     |
	        | (Rule set)  |
	        +------+------+
	               |
	      +--------+--------+
	      |                 |
	+-----+-----+     +-----+-----+
	|  Chevron  |     |  Layout   |
	|   Style   |     | BackTitle |
	+-----------+     +-----------+

🎯 Purpose:
  - ChevronStyle: bumps `as={ChevronRight}` icons from size lg to xl and
    lightens their dark/light colors on the account screen
  - LayoutBackTitle: fills empty `headerBackTitle` values in the navigation
    layout, except on the application screen

🔄 Flow:
1. Build a Fix from its options
2. Apply the rules in declared order, each on the previous output
3. Print the fixed Report, whatever matched

📝 Notes:
Each rule set encodes the exact substitutions one codebase needed. The color
windows and the exempt screen indentation are tuned against that codebase and
are not a general matching strategy.
*/
package fix
