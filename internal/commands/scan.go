package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/reoring/mcuschema/internal/config"
	"github.com/reoring/mcuschema/logger"
	"github.com/reoring/mcuschema/mcu"
)

func (a *app) scanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Import every description file of the data directory",
		Long: `Enumerates DATA_DIR/SUBDIR/*EXT in name order, builds one MCU record per file
and logs a summary line for each. The run stops at the first file that fails.

Example:
  mcuimport scan
  mcuimport scan --data-dir 3dparty/st-open-pins --permissive`,
		Args: cobra.NoArgs,
		RunE: a.runScan,
	}
	f := cmd.Flags()
	f.String("data-dir", "", "Root of the pin database (default 3dparty/st-open-pins)")
	f.String("subdir", "", "Subdirectory holding the description files (default mcu)")
	f.String("ext", "", "File extension to import (default .xml)")
	_ = a.v.BindPFlag(config.KeyDataDir, f.Lookup("data-dir"))
	_ = a.v.BindPFlag(config.KeySubdir, f.Lookup("subdir"))
	_ = a.v.BindPFlag(config.KeyExtension, f.Lookup("ext"))
	return cmd
}

func (a *app) runScan(cmd *cobra.Command, _ []string) error {
	dir := a.cfg.Dir()
	files, err := listFiles(dir, a.cfg.Extension)
	if err != nil {
		return err
	}
	a.log.Debug("scanning", logger.F("dir", dir), logger.F("files", len(files)), logger.F("mode", a.cfg.BuildOpt(nil).Mode))

	for _, path := range files {
		root, err := readDocument(path, a.cfg.DocumentOpt(a.diagnostics(path)))
		if err == nil {
			var m mcu.MCU
			m, err = mcu.ParseMCU(a.buildContext(cmd.Context(), path), root)
			if err == nil {
				a.log.Info(m.Summary(), logger.F("file", filepath.Base(path)))
				continue
			}
		}
		a.log.Error("import failed", logger.F("file", path), logger.F("error", err))
		return fmt.Errorf("%s: %w", path, err)
	}
	a.log.Info("scan complete", logger.F("files", len(files)))
	return nil
}

// listFiles returns the regular files of dir with extension ext, sorted by
// name.
func listFiles(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}
	var out []string
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		if ext != "" && !strings.EqualFold(filepath.Ext(e.Name()), ext) {
			continue
		}
		out = append(out, filepath.Join(dir, e.Name()))
	}
	return out, nil
}
