// Package core holds the administrative and utility prefix commands:
// configuration, presence, moderation helpers.
package core

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"mordomo/internal/command"
)

type HelpCommand struct{}

func (c *HelpCommand) Name() string        { return "help" }
func (c *HelpCommand) Description() string { return "Lista todos os comandos disponíveis." }
func (c *HelpCommand) Aliases() []string   { return []string{"ajuda", "comandos"} }
func (c *HelpCommand) Category() string    { return "Geral" }
func (c *HelpCommand) RequireDJ() bool     { return false }
func (c *HelpCommand) RequireStaff() bool  { return false }
func (c *HelpCommand) RequireOwner() bool  { return false }

func (c *HelpCommand) Run(ctx *command.MessageContext) error {
	prefix := ctx.Storage.Prefix(context.Background())

	byCategory := map[string][]command.Command{}
	for _, cmd := range command.All() {
		byCategory[cmd.Category()] = append(byCategory[cmd.Category()], cmd)
	}
	categories := make([]string, 0, len(byCategory))
	for cat := range byCategory {
		categories = append(categories, cat)
	}
	sort.Strings(categories)

	var b strings.Builder
	for _, cat := range categories {
		cmds := byCategory[cat]
		sort.Slice(cmds, func(i, j int) bool { return cmds[i].Name() < cmds[j].Name() })

		fmt.Fprintf(&b, "**%s**\n", cat)
		for _, cmd := range cmds {
			fmt.Fprintf(&b, "`%s%s`", prefix, cmd.Name())
			if aliases := cmd.Aliases(); len(aliases) > 0 {
				fmt.Fprintf(&b, " (%s)", strings.Join(aliases, ", "))
			}
			fmt.Fprintf(&b, " · %s\n", cmd.Description())
		}
		b.WriteString("\n")
	}

	command.ReplyText(ctx, "📖 Comandos", b.String())
	return nil
}
