package genesis

import (
	"github.com/dustin/go-humanize"
	"github.com/idena-network/genesis-unpack/config"
	"github.com/idena-network/genesis-unpack/log"
	"github.com/klauspost/compress/zip"
	"github.com/mholt/archiver/v3"
	"github.com/pkg/errors"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
)

type Unpacker struct {
	baseDir string
	stats   *Stats
	log     log.Logger
}

func NewUnpacker(baseDir string) *Unpacker {
	return &Unpacker{
		baseDir: baseDir,
		stats:   NewStats(),
		log:     log.New("component", "genesis"),
	}
}

func (u *Unpacker) Stats() *Stats {
	return u.stats
}

// Unpack materializes the genesis state of every network in order and stops at the first failure.
func (u *Unpacker) Unpack(networks []config.NetworkDescriptor) error {
	for _, network := range networks {
		if err := u.UncompressState(network); err != nil {
			return err
		}
	}
	return nil
}

// UncompressState extracts the network's genesis state from its zip archive, or creates an empty
// genesis file if the network has no known genesis yet.
func (u *Unpacker) UncompressState(network config.NetworkDescriptor) error {
	if network.GenesisIsKnown {
		return u.extract(network)
	}
	return u.touch(network)
}

func (u *Unpacker) extract(network config.NetworkDescriptor) error {
	archivePath := network.GenesisStateArchive(u.baseDir)
	fail := func(stage Stage, path string, err error) error {
		return &UnpackError{Network: network.Name, Path: path, Stage: stage, Err: err}
	}

	archiveFile, err := os.Open(archivePath)
	if err != nil {
		return fail(StageOpenArchive, archivePath, err)
	}
	defer archiveFile.Close()

	info, err := archiveFile.Stat()
	if err != nil {
		return fail(StageOpenArchive, archivePath, err)
	}

	z := archiver.NewZip()
	if err := z.Open(archiveFile, info.Size()); err != nil {
		return fail(StageReadArchive, archivePath, err)
	}
	defer z.Close()

	entry, err := findEntry(z, config.GenesisFileName)
	if err != nil {
		if errors.Cause(err) == ErrEntryNotFound {
			return fail(StageFindEntry, archivePath, errors.Wrapf(err, "entry %v", config.GenesisFileName))
		}
		return fail(StageReadArchive, archivePath, err)
	}
	defer entry.Close()

	outPath := network.GenesisStatePath(u.baseDir)
	if info, err := os.Stat(outPath); err == nil && !info.Mode().IsRegular() {
		return fail(StageCreateOutput, outPath, errors.Errorf("output is not a regular file (%v)", info.Mode()))
	}
	tmp, err := ioutil.TempFile(filepath.Dir(outPath), "."+config.GenesisFileName+"-*")
	if err != nil {
		return fail(StageCreateOutput, outPath, err)
	}
	tmpPath := tmp.Name()
	written, err := writeOutput(tmp, entry, outPath)
	if err != nil {
		os.Remove(tmpPath)
		return fail(StageWriteOutput, outPath, err)
	}

	u.stats.extracted.Inc(1)
	u.stats.bytes.Inc(written)
	u.log.Info("Genesis state extracted", "network", network.Name, "path", outPath, "size", humanize.Bytes(uint64(written)))
	return nil
}

// findEntry walks the archive until the regular file with the given name. Entries that cannot
// be opened are skipped unless they are the one being looked for. The returned file must be
// closed by the caller.
func findEntry(z *archiver.Zip, name string) (archiver.File, error) {
	for {
		f, err := z.Read()
		if err == io.EOF {
			return archiver.File{}, ErrEntryNotFound
		}
		header, ok := f.Header.(zip.FileHeader)
		target := ok && header.Name == name && f.FileInfo != nil && !f.IsDir()
		if err != nil {
			if target {
				return archiver.File{}, errors.Wrapf(err, "failed to open zip entry %v", name)
			}
			if !ok {
				return archiver.File{}, errors.Wrap(err, "failed to read zip entry")
			}
			continue
		}
		if target {
			return f, nil
		}
		f.Close()
	}
}

// writeOutput copies the entry into tmp and moves it over outPath. tmp is closed on every path.
func writeOutput(tmp *os.File, entry io.Reader, outPath string) (int64, error) {
	written, err := io.Copy(tmp, entry)
	if err != nil {
		tmp.Close()
		return 0, errors.Wrap(err, "failed to copy genesis state")
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return 0, err
	}
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		return 0, err
	}
	if err := tmp.Close(); err != nil {
		return 0, err
	}
	if err := os.Rename(tmp.Name(), outPath); err != nil {
		return 0, err
	}
	return written, nil
}

func (u *Unpacker) touch(network config.NetworkDescriptor) error {
	path := network.GenesisStatePath(u.baseDir)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if os.IsExist(err) {
		u.stats.kept.Inc(1)
		u.log.Debug("Genesis state placeholder already exists", "network", network.Name, "path", path)
		return nil
	}
	if err != nil {
		return &UnpackError{Network: network.Name, Path: path, Stage: StagePlaceholder, Err: err}
	}
	if err := f.Close(); err != nil {
		return &UnpackError{Network: network.Name, Path: path, Stage: StagePlaceholder, Err: err}
	}
	u.stats.placeholders.Inc(1)
	u.log.Info("Genesis state placeholder created", "network", network.Name, "path", path)
	return nil
}
