// Command apidocs writes the OpenAPI document for the route table to disk.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/Aidin1998/walletapi/api"
	"github.com/Aidin1998/walletapi/docs"
)

func main() {
	out := flag.String("out", "docs/openapi", "output directory")
	version := flag.String("version", "1.0.0", "API version recorded in info.version")
	flag.Parse()

	if err := run(*out, *version); err != nil {
		log.Fatalf("Failed to generate OpenAPI documentation: %v", err)
	}
}

func run(dir, version string) error {
	doc, err := api.BuildDocument(version)
	if err != nil {
		return err
	}

	jsonData, err := docs.MarshalJSON(doc)
	if err != nil {
		return fmt.Errorf("render json: %w", err)
	}
	yamlData, err := docs.MarshalYAML(doc)
	if err != nil {
		return fmt.Errorf("render yaml: %w", err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	for name, data := range map[string][]byte{
		"openapi.json": jsonData,
		"openapi.yaml": yamlData,
	} {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		fmt.Println("wrote", path)
	}
	return nil
}
