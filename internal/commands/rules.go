package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/finreport/internal/categorize"
	"github.com/cleared-dev/finreport/internal/gitops"
)

func newRulesCommand(g *globalFlags) *cobra.Command {
	rulesCmd := &cobra.Command{
		Use:   "rules",
		Short: "Inspect and edit categorization rules",
	}
	rulesCmd.AddCommand(newRulesListCommand(g))
	rulesCmd.AddCommand(newRulesCheckCommand(g))
	rulesCmd.AddCommand(newRulesAddCommand(g))
	return rulesCmd
}

func newRulesListCommand(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List categories in match order with their keywords",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(g, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			c, err := a.categorizer()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i, r := range c.Rules() {
				fmt.Fprintf(out, "%2d. %s: %s\n", i+1, r.Category, strings.Join(r.Keywords, ", "))
			}
			return nil
		},
	}
}

func newRulesCheckCommand(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "check <description>",
		Short: "Show which category a description falls into and why",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(g, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			c, err := a.categorizer()
			if err != nil {
				return err
			}
			desc := strings.Join(args, " ")
			category, keyword, ok := c.Match(desc)
			if !ok {
				fmt.Fprintf(cmd.OutOrStdout(), "%s (no keyword matched)\n", category)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (keyword %q)\n", category, keyword)
			return nil
		},
	}
}

func newRulesAddCommand(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "add <category> <keyword>",
		Short: "Add a keyword to a category, creating the category if needed",
		Long: `Adds a keyword to the rules file. A new category is inserted just before
Unclassified. When the project is a git repository the change is committed.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(g, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return runRulesAdd(cmd, a, args[0], args[1])
		},
	}
}

func runRulesAdd(cmd *cobra.Command, a *app, category, keyword string) error {
	category = strings.TrimSpace(category)
	keyword = strings.ToLower(strings.TrimSpace(keyword))

	path := a.rulesPath()
	rules, err := categorize.LoadRules(path)
	if errors.Is(err, fs.ErrNotExist) {
		rules, err = categorize.DefaultRules(), nil
	}
	if err != nil {
		return err
	}

	rules, err = addKeyword(rules, category, keyword)
	if err != nil {
		return err
	}
	if err := categorize.ValidateRules(rules); err != nil {
		return err
	}
	if err := categorize.SaveRules(path, rules); err != nil {
		return err
	}

	msg := fmt.Sprintf("rules: add %q to %s", keyword, category)
	if gitops.IsRepo(a.dir) {
		rel, err := filepath.Rel(a.dir, path)
		if err != nil {
			return fmt.Errorf("resolving rules path: %w", err)
		}
		hash, err := gitops.Commit(a.dir, msg, gitops.DefaultAuthor, rel)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Added %q to %s (%s)\n", keyword, category, hash)
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Added %q to %s\n", keyword, category)
	return nil
}

func addKeyword(rules []categorize.Rule, category, keyword string) ([]categorize.Rule, error) {
	if category == categorize.Unclassified {
		return nil, fmt.Errorf("%s cannot have keywords", categorize.Unclassified)
	}
	for i, r := range rules {
		if r.Category != category {
			continue
		}
		for _, kw := range r.Keywords {
			if strings.EqualFold(kw, keyword) {
				return nil, fmt.Errorf("%s already has keyword %q", category, keyword)
			}
		}
		rules[i].Keywords = append(rules[i].Keywords, keyword)
		return rules, nil
	}

	added := categorize.Rule{Category: category, Keywords: []string{keyword}}
	for i, r := range rules {
		if r.Category == categorize.Unclassified {
			return append(rules[:i], append([]categorize.Rule{added}, rules[i:]...)...), nil
		}
	}
	return append(rules, added), nil
}
