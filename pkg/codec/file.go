package codec

import (
	stderrors "errors"
	"io/fs"

	"github.com/arthur-debert/alx/pkg/alias"
	"github.com/arthur-debert/alx/pkg/errors"
	"github.com/arthur-debert/alx/pkg/filesystem"
	"github.com/arthur-debert/alx/pkg/logging"
	"github.com/arthur-debert/alx/pkg/types"
)

const storeHeader = "# alx alias store. Managed by alx; edit with `alx edit`.\n\n"

// Load reads the store file at path. A missing file is reported as
// NotFound so the caller can treat it as a first run.
func Load(fsys types.FS, path string, opts ...alias.Option) (*alias.Store, error) {
	log := logging.GetLogger("codec.file")

	data, err := fsys.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(err, errors.ErrNotFound, "alias store %s does not exist", path).
				WithDetail("path", path)
		}
		return nil, errors.Wrapf(err, errors.ErrIOFailure, "failed to read alias store %s", path).
			WithDetail("path", path)
	}

	s, err := DecodeStore(data, FormatTOML, opts...)
	if err != nil {
		var alxErr *errors.AlxError
		if stderrors.As(err, &alxErr) {
			alxErr.WithDetail("path", path)
		}
		return nil, err
	}

	log.Debug().Str("path", path).Int("aliases", s.Len()).Msg("Alias store loaded")
	return s, nil
}

// Save writes the store to path atomically and marks it clean
func Save(fsys types.FS, s *alias.Store, path string) error {
	log := logging.GetLogger("codec.file")

	data, err := EncodeStore(s, FormatTOML)
	if err != nil {
		return err
	}

	content := append([]byte(storeHeader), data...)
	if err := filesystem.WriteFileAtomic(fsys, path, content, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrIOFailure, "failed to write alias store %s", path).
			WithDetail("path", path)
	}

	s.MarkClean()
	log.Debug().Str("path", path).Int("aliases", s.Len()).Msg("Alias store saved")
	return nil
}
