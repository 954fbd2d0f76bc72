package config

import (
	"fmt"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"path/filepath"
	"strings"
)

const (
	// GenesisFileName is the name of the genesis state file inside every network directory
	// and inside its archive.
	GenesisFileName = "genesis.ssz"
	// GenesisArchiveName is the zip archive shipped next to the network config.
	GenesisArchiveName = GenesisFileName + ".zip"
)

// NetworkDescriptor describes one supported network and where its genesis state lives.
type NetworkDescriptor struct {
	Name           string
	GenesisIsKnown bool
}

// Dir returns the network's config directory below baseDir.
func (n NetworkDescriptor) Dir(baseDir string) string {
	return filepath.Join(baseDir, n.Name)
}

func (n NetworkDescriptor) GenesisStateArchive(baseDir string) string {
	return filepath.Join(n.Dir(baseDir), GenesisArchiveName)
}

func (n NetworkDescriptor) GenesisStatePath(baseDir string) string {
	return filepath.Join(n.Dir(baseDir), GenesisFileName)
}

func (n NetworkDescriptor) String() string {
	return n.Name
}

var (
	Altona  = NetworkDescriptor{Name: "altona", GenesisIsKnown: true}
	Medalla = NetworkDescriptor{Name: "medalla", GenesisIsKnown: true}
	Spadina = NetworkDescriptor{Name: "spadina", GenesisIsKnown: true}
	Mainnet = NetworkDescriptor{Name: "mainnet", GenesisIsKnown: false}
	Pyrmont = NetworkDescriptor{Name: "pyrmont", GenesisIsKnown: true}
	Toledo  = NetworkDescriptor{Name: "toledo", GenesisIsKnown: true}
)

// Networks lists every network whose genesis state gets unpacked, in processing order.
func Networks() []NetworkDescriptor {
	return []NetworkDescriptor{
		Altona,
		Medalla,
		Spadina,
		Mainnet,
		Pyrmont,
		Toledo,
	}
}

// ValidateNetworks reports every malformed or duplicated descriptor at once.
func ValidateNetworks(networks []NetworkDescriptor) error {
	var result *multierror.Error
	seen := make(map[string]struct{}, len(networks))
	for i, n := range networks {
		if n.Name == "" {
			result = multierror.Append(result, errors.Errorf("network #%d has empty name", i))
			continue
		}
		if strings.ContainsAny(n.Name, `/\`) || n.Name == "." || n.Name == ".." {
			result = multierror.Append(result, errors.Errorf("network %q has invalid name", n.Name))
		}
		if _, ok := seen[n.Name]; ok {
			result = multierror.Append(result, errors.Errorf("network %q is defined twice", n.Name))
		}
		seen[n.Name] = struct{}{}
	}
	if result == nil {
		return nil
	}
	result.ErrorFormat = func(errs []error) string {
		msgs := make([]string, len(errs))
		for i, err := range errs {
			msgs[i] = err.Error()
		}
		return fmt.Sprintf("invalid network list: %s", strings.Join(msgs, "; "))
	}
	return result
}
