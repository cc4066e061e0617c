/*
Package status loads and stores the files jsxfix rewrites.

	            +-------------+
	            |   Manager   |
	            |  (Storage)  |
	            +------+------+
	                   |
	      +-----------+-----------+
	      |                       |
	+-----+-----+           +----+----+
	|   Read    |           |  Write  |
	|  (UTF-8)  |           | (Atomic)|
	+-----------+           +---------+

🎯 Purpose:
- Reads whole target files as UTF-8 text
- Writes transformed text back, atomically by default
- Keeps optional .bak copies
- Expands glob targets
- Renders line diffs for dry runs

⚡ Write modes:
  - Atomic (default): temp file in the target directory, then rename. A crash
    leaves either the old or the new content.
  - In place: truncate and write, matching a plain overwrite. A crash mid-write
    can leave a partial file.

Both modes keep the permissions of the existing file. Nothing is locked; two
concurrent runs on the same file are last writer wins.
*/
package status
