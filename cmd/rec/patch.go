package main

import (
	"encoding/json"
	"fmt"
	"slices"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"

	"github.com/signadot/flexrec/render"
)

type PatchConfig struct {
	*MainConfig

	Patch *cli.Command
}

// patch applies an RFC-6902 patch document to the dynamic layer of a
// record file. Fixed fields are not patchable: a patch producing a key
// that is declared fixed fails with the record's conflict error.
func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: patch takes a record file and a patch file", cli.ErrUsage)
	}
	rec, err := getRecFile(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	patchData, err := readFileOrStdin(cc, args[1])
	if err != nil {
		return err
	}
	ops, err := jsonpatch.DecodePatch(patchData)
	if err != nil {
		return fmt.Errorf("cannot decode patch: %w", err)
	}

	dyn := make(map[string]any, rec.Len())
	for name, v := range rec.All() {
		dyn[name] = v
	}
	doc, err := json.Marshal(dyn)
	if err != nil {
		return err
	}
	out, err := ops.Apply(doc)
	if err != nil {
		return fmt.Errorf("cannot apply patch: %w", err)
	}
	patched := map[string]any{}
	if err := json.Unmarshal(out, &patched); err != nil {
		return fmt.Errorf("patch result is not an object: %w", err)
	}

	for _, name := range rec.Keys() {
		if _, ok := patched[name]; !ok {
			rec.Delete(name)
		}
	}
	names := make([]string, 0, len(patched))
	for name := range patched {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		if err := rec.IndexSet(name, patched[name]); err != nil {
			return err
		}
	}
	return render.Render(cc.Out, rec, render.WithColor(cfg.colorOn()))
}
