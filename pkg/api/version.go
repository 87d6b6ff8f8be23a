package api

/*
{
  "version": "v0.1.0",
  "gitCommit": "0acf1a5af",
  "devfile": {
    "schemaVersions": ["2.2.0"]
  }
}
*/

type HandlerVersion struct {
	Version   string       `json:"version"`
	GitCommit string       `json:"gitCommit"`
	Devfile   *DevfileInfo `json:"devfile,omitempty"`
}

type DevfileInfo struct {
	SchemaVersions []string `json:"schemaVersions,omitempty"`
}
