package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gohypedevelopers-stack/admin-dashboard/internal/api"
	"github.com/gohypedevelopers-stack/admin-dashboard/internal/fetch"
	"github.com/gohypedevelopers-stack/admin-dashboard/internal/table"
)

// pageCommand is a resource-specific command mounted on a page, e.g.
// "approve <id>" on verifications or "new" on products.
type pageCommand struct {
	usage  string
	run    func(ctx context.Context, args []string) error
	reload bool // refetch the rows after a successful run
}

// pageSpec describes one resource list page: how to load its rows, how they
// are columned, the optional backend hooks for edits and deletes, and any
// extra commands beyond the shared table set.
type pageSpec struct {
	title    string
	cacheKey string
	columns  []table.Column
	load     func(ctx context.Context) ([]table.Row, error)
	save     table.SaveFunc
	remove   table.DeleteFunc
	extras   map[string]pageCommand
}

const pageHelp = "Page commands: next, prev, page <n>, search [term], mode view|edit|delete, " +
	"edit <id>, set <field> <value>, save, cancel, delete <id>, confirm, refresh, back"

func (s pageSpec) help() string {
	if len(s.extras) == 0 {
		return pageHelp
	}
	usages := make([]string, 0, len(s.extras))
	for _, pc := range s.extras {
		usages = append(usages, pc.usage)
	}
	sort.Strings(usages)
	return pageHelp + "\nAlso here: " + strings.Join(usages, ", ")
}

// runPage drives one table page: an inner loop that reads page commands from
// the app's input until "back" or EOF. The table re-renders after every
// command.
func (a *App) runPage(ctx context.Context, spec pageSpec) error {
	var opts []table.Option
	if spec.save != nil {
		opts = append(opts, table.WithSave(spec.save))
	}
	if spec.remove != nil {
		opts = append(opts, table.WithDelete(spec.remove))
	}
	tbl := table.New(spec.title, spec.columns, opts...)

	res := fetch.NewResource(spec.load)
	defer res.Close()

	a.reload(ctx, res, tbl, spec.cacheKey)
	fmt.Fprintln(a.out, tbl.Render())

	for {
		fmt.Fprintf(a.out, "%s> ", strings.ToLower(spec.title))
		line, err := a.reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			if err != nil {
				return nil
			}
			continue
		}
		cmd, args := parts[0], parts[1:]

		if cmd == "back" || cmd == "b" {
			return nil
		}
		if cmd == "help" {
			fmt.Fprintln(a.out, spec.help())
			continue
		}
		switch pc, ok := spec.extras[cmd]; {
		case ok:
			if err := pc.run(ctx, args); err != nil {
				fmt.Fprintln(a.out, "Error:", err.Error())
			} else if pc.reload {
				a.reload(ctx, res, tbl, spec.cacheKey)
			}
		case cmd == "refresh":
			a.reload(ctx, res, tbl, spec.cacheKey)
		default:
			a.execPageCommand(tbl, cmd, args)
		}
		fmt.Fprintln(a.out, tbl.Render())

		if err != nil {
			return nil
		}
	}
}

func (a *App) execPageCommand(tbl *table.Model, cmd string, args []string) {
	fail := func(err error) {
		if err != nil {
			fmt.Fprintln(a.out, "Error:", err.Error())
		}
	}

	switch cmd {
	case "next":
		tbl.NextPage()
	case "prev":
		tbl.PrevPage()
	case "page":
		if len(args) != 1 {
			fmt.Fprintln(a.out, "Usage: page <n>")
			return
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Fprintln(a.out, "Usage: page <n>")
			return
		}
		tbl.GoToPage(n)
	case "search":
		tbl.SetSearch(strings.Join(args, " "))
	case "mode":
		if len(args) != 1 {
			fmt.Fprintln(a.out, "Usage: mode view|edit|delete")
			return
		}
		fail(tbl.SetMode(table.Mode(args[0])))
	case "edit":
		if len(args) != 1 {
			fmt.Fprintln(a.out, "Usage: edit <id>")
			return
		}
		if err := tbl.SetMode(table.ModeEdit); err != nil {
			fail(err)
			return
		}
		fail(tbl.StartEdit(args[0]))
	case "set":
		if len(args) < 2 {
			fmt.Fprintln(a.out, "Usage: set <field> <value>")
			return
		}
		fail(tbl.SetField(args[0], strings.Join(args[1:], " ")))
	case "save":
		fail(tbl.SaveEdit())
	case "cancel":
		tbl.CancelEdit()
		tbl.CancelDelete()
	case "delete":
		if len(args) != 1 {
			fmt.Fprintln(a.out, "Usage: delete <id>")
			return
		}
		if err := tbl.SetMode(table.ModeDelete); err != nil {
			fail(err)
			return
		}
		fail(tbl.ArmDelete(args[0]))
	case "confirm":
		fail(tbl.ConfirmDelete())
	default:
		fmt.Fprintln(a.out, "Unknown command:", cmd)
	}
}

// reload fetches the page's rows. When the backend is unreachable and a
// snapshot exists, the cached rows are shown instead; on success the fresh
// rows replace the snapshot.
func (a *App) reload(ctx context.Context, res *fetch.Resource[table.Row], tbl *table.Model, cacheKey string) {
	err := res.Refresh(ctx)
	switch {
	case err == nil:
		if a.snapshots != nil && cacheKey != "" {
			if serr := a.snapshots.Save(ctx, cacheKey, res.Snapshot().Data); serr != nil {
				a.log.Warn(ctx, "could not cache snapshot", "resource", cacheKey, "error", serr.Error())
			}
		}
	case errors.Is(err, api.ErrUnavailable) && a.snapshots != nil && cacheKey != "":
		var rows []table.Row
		fetchedAt, cerr := a.snapshots.Load(ctx, cacheKey, &rows)
		if cerr == nil {
			res.SetData(rows)
			fmt.Fprintf(a.out, "Backend unreachable, showing data cached %s\n",
				fetchedAt.Format(time.RFC822))
		} else {
			fmt.Fprintln(a.out, "Error:", err.Error())
		}
	default:
		fmt.Fprintln(a.out, "Error:", err.Error())
	}

	tbl.SetRows(res.Snapshot().Data)
}
