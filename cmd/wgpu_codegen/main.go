// wgpu_codegen reads the WebGPU API description (webgpu.json or webgpu.yml) and generates the Mojo FFI
// declarations of the wgpu-native library: enums.mojo, bitflags.mojo, constants.mojo and _cffi.mojo.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/janpfeifer/gonb/common"
	"github.com/janpfeifer/must"
	"k8s.io/klog/v2"

	"github.com/gomlx/mojowgpu/artifacts"
	"github.com/gomlx/mojowgpu/mojo"
	"github.com/gomlx/mojowgpu/spec"
)

const specEnvVar = "WEBGPU_SPEC"

var (
	flagOutput = flag.String("output", "wgpu", "Directory where to write the generated files.")
	flagStrict = flag.Bool("strict", false,
		"Require every type reference (struct.X, enum.X, ...) to name an entity declared in the document.")
	flagExtensionTypes = flag.String("extension_types", strings.Join(mojo.DefaultConfig().ExtensionTypes, ","),
		"Comma separated list of type names, not in the document notation, accepted as they are.")
	flagSkipNative = flag.Bool("skip_native", false, "Don't include the wgpu-native specific declarations.")
	flagDryRun     = flag.Bool("dry_run", false, "Generate the files but only print their names and sizes.")
)

func main() {
	klog.InitFlags(nil)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `wgpu_codegen generates Mojo FFI declarations from a WebGPU API description.

Usage:

	wgpu_codegen [flags] <webgpu.json|webgpu.yml>

If the path is not given, it is read from the %s environment variable.

Flags:
`, specEnvVar)
		flag.PrintDefaults()
	}
	flag.Parse()

	specPath := flag.Arg(0)
	if specPath == "" {
		specPath = os.Getenv(specEnvVar)
	}
	if specPath == "" || flag.NArg() > 1 {
		flag.Usage()
		os.Exit(1)
	}
	specPath = common.ReplaceTildeInDir(specPath)

	config := mojo.DefaultConfig()
	config.ExtensionTypes = splitList(*flagExtensionTypes)
	config.StrictReferences = *flagStrict
	config.SkipNative = *flagSkipNative

	s, err := spec.Load(specPath)
	if err != nil {
		klog.Fatalf("Failed to load %q: %+v", specPath, err)
	}
	g := must.M1(mojo.NewGenerator(s, config))
	files, err := g.Generate()
	if err != nil {
		klog.Fatalf("Failed to generate declarations for %q: %+v", specPath, err)
	}

	if *flagDryRun {
		for _, file := range files {
			fmt.Printf("%s\t%d bytes\n", file.Name, len(file.Contents))
		}
		return
	}
	outputDir := common.ReplaceTildeInDir(*flagOutput)
	if err := artifacts.Write(artifacts.OS, outputDir, files); err != nil {
		klog.Fatalf("Failed to write declarations: %+v", err)
	}
	fmt.Printf("Generated %d files in %q\n", len(files), outputDir)
}

func splitList(list string) []string {
	var values []string
	for _, value := range strings.Split(list, ",") {
		if value = strings.TrimSpace(value); value != "" {
			values = append(values, value)
		}
	}
	return values
}
