package internalcheck

import (
	"testing"

	"golang.org/x/tools/go/packages"
)

const modulePath = "github.com/cryptotoy/smp-go/pkg/smp"

// arithmeticPackages must stay silent: no logging and no printing.
var arithmeticPackages = []string{
	modulePath + "/modarith",
	modulePath + "/group",
	modulePath + "/fiatshamir",
	modulePath + "/zk",
}

// protocolPackages handle secrets or randomness.
var protocolPackages = append([]string{
	modulePath,
	modulePath + "/random",
	modulePath + "/logging",
}, arithmeticPackages...)

func load(t *testing.T, patterns ...string) []*packages.Package {
	t.Helper()
	cfg := &packages.Config{
		Mode: packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo |
			packages.NeedFiles | packages.NeedName | packages.NeedImports,
	}
	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		t.Fatalf("load packages: %v", err)
	}
	if packages.PrintErrors(pkgs) > 0 {
		t.Fatalf("packages contain errors")
	}
	return pkgs
}
