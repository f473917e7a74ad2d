package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

func (a *App) getStatus(ctx context.Context) string {
	user := a.identity.CurrentUser(ctx)
	if user == nil {
		return ""
	}
	return fmt.Sprintf("(%s %s)", user.Email, a.identity.RoleOf(user))
}

// Root runs the interactive loop until EOF or exit.
func (a *App) Root(ctx context.Context) {
	printlnFn("Job portal CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, func() string { return a.getStatus(ctx) }, scanner)
}
