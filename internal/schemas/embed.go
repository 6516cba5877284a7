package schemas

import "embed"

//go:embed analysis_report.schema.json ranking_report.schema.json
var schemaFS embed.FS

// embedded maps schema filenames to their content, loaded once at init.
var embedded = map[string]string{}

func init() {
	entries, err := schemaFS.ReadDir(".")
	if err != nil {
		panic(err)
	}
	for _, entry := range entries {
		data, err := schemaFS.ReadFile(entry.Name())
		if err != nil {
			panic(err)
		}
		embedded[entry.Name()] = string(data)
	}
}
