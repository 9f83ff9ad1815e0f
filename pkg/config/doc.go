/*
Package config loads the haze configuration file.

	            +-------------+
	            |   Config    |
	            |  (worlds)   |
	            +------+------+
	                   |
	      +------------+------------+
	      |            |            |
	+-----+----+ +-----+----+ +-----+----+
	|   JSON   | |   YAML   | |   HCL    |
	| (jsonc)  | |          | |          |
	+----------+ +----------+ +----------+

🎯 Purpose:
- Reads the list of world glob patterns
- Picks a parser by file extension, defaulting to JSON
- Reports unreadable and malformed files with the working directory attached

🔍 Example:

	// config.json
	{
		// every directory under worlds/ is a world
		"worlds": ["worlds/*", "archive/*"],
	}

	cfg, err := config.Load(ctx, config.DefaultPath)
	if err != nil {
		return err
	}
*/
package config
