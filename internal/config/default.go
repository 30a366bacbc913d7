package config

// defaultLayout is the demo shown when no layout file is found
const defaultLayout = `
version: "1.0"
layout:
  width: 4
  height: 4
  margin: {width: 1, height: 0}
  cells:
    - {column: 0, row: 0, button: "0,0"}
    - {column: 0, row: 1, button: "0,1"}
    - {column: 2, row: 0, button: "2,0"}
    - {column: 1, row: 1, button: "1,1"}
    - {column: 1, row: 2, button: "1,2"}
    - {column: 2, row: 1, button: "2,1"}
    - {column: 2, row: 2, button: "2,2"}
    - {column: 1, row: 0, text: "Text asdf"}
    - column: 0
      row: 2
      grid:
        label: "Deploy application"
        width: 1
        height: 3
        margin: {width: 1, height: 0}
        cells:
          - {column: 0, row: 0, button: "Debug", parameter: "debug"}
          - {column: 0, row: 1, button: "Keyuser", parameter: "keyuser"}
          - {column: 0, row: 2, button: "Release", parameter: "release"}
`

// DefaultConfig returns the built-in demo layout with default settings
func DefaultConfig() *Config {
	cfg, err := Parse([]byte(defaultLayout))
	if err != nil {
		panic("config: built-in layout is invalid: " + err.Error())
	}
	return cfg
}
