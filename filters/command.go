// Package filters implements the concrete Filter predicates from
// SPEC_FULL.md §4.2: Command, Text, State, User. The Command filter's
// parsing algorithm is ported verbatim from
// original_source/src/filters/command.rs (CommandObject::extract /
// validate_command_object).
package filters

import (
	"regexp"
	"strings"

	"github.com/kurtskinny/tgcore/bot"
	"github.com/kurtskinny/tgcore/event"
	"github.com/kurtskinny/tgcore/telegram"
	"github.com/kurtskinny/tgcore/tgcontext"
)

// CommandObject is the parsed result of the command-parsing algorithm
// below; inserted into the context under key "command" on a match
// (SPEC_FULL.md §4.2 "Key concrete filters").
type CommandObject struct {
	Prefix  byte
	Command string
	Mention string // empty means absent
	Args    []string
}

// ContextKeyCommand is the context key a matched CommandObject is written
// under.
const ContextKeyCommand = "command"

// ExtractCommand implements the parsing algorithm from SPEC_FULL.md §4.2
// "Command parsing algorithm", ported verbatim from
// original_source/src/filters/command.rs CommandObject::extract: trim,
// split on spaces, first token is full_command, first char is prefix,
// remainder (if non-empty) is the command body, an '@' not at position 0
// splits off the mention, remaining tokens are args.
func ExtractCommand(text string) (*CommandObject, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, false
	}
	parts := strings.Split(trimmed, " ")
	full := parts[0]
	var args []string
	if len(parts) > 1 {
		args = parts[1:]
	}

	if len(full) == 0 {
		return nil, false
	}
	prefix := full[0]
	body := full[1:]
	if body == "" {
		return nil, false
	}

	command := body
	mention := ""
	if idx := strings.IndexByte(body, '@'); idx > 0 {
		command = body[:idx]
		mention = body[idx+1:]
	}

	return &CommandObject{Prefix: prefix, Command: command, Mention: mention, Args: args}, true
}

// PatternType is one of the two ways a Command filter matches a parsed
// command body: plain text or a compiled regex. There is no BotCommand
// object pattern kind.
type PatternType struct {
	Text  string
	Regex *regexp.Regexp
}

// Command matches the prefix/body/mention/args shape via ExtractCommand
// and validates the body against Patterns (SPEC_FULL.md §4.2 "Command
// filter").
type Command struct {
	Patterns     []PatternType
	Prefix       byte
	IgnoreCase   bool
	IgnoreMention bool
}

// CommandOne builds a single-pattern Command filter with the default '/'
// prefix, matching the framework's Command::one builder.
func CommandOne(name string) *Command {
	return &Command{Patterns: []PatternType{{Text: name}}, Prefix: '/'}
}

// Check implements event.Filter. On a prefix/body match it inserts the
// CommandObject into the context even if the mention/pattern validation
// ultimately fails — matching original_source's command.rs, which writes
// context before returning the boolean (extraction failure is the only
// case that skips the write).
func (c *Command) Check(b *bot.Bot, u *telegram.Update, ctx *tgcontext.Context) (bool, error) {
	text, ok := u.TextOrCaption()
	if !ok {
		return false, nil
	}

	cmd, ok := ExtractCommand(text)
	if !ok {
		return false, nil
	}
	ctx.Set(ContextKeyCommand, cmd)

	if cmd.Prefix != c.Prefix {
		return false, nil
	}

	if !c.matchesPattern(cmd.Command) {
		return false, nil
	}

	if cmd.Mention != "" && !c.IgnoreMention {
		expected, ok := b.CachedUsername()
		// SUPPLEMENTED FEATURE: getMe() is resolved and cached once per bot
		// at startup (SPEC_FULL.md "SUPPLEMENTED FEATURES"), not here, since
		// Check must stay a pure, synchronous predicate with no transport
		// dependency. Until the cache is populated we cannot prove the
		// mention wrong, so we don't reject on it.
		if ok && !strings.EqualFold(cmd.Mention, expected) {
			return false, nil
		}
	}

	return true, nil
}

// matchesPattern applies IgnoreCase uniformly across both pattern kinds: a
// Regex pattern is matched against the already-folded candidate, same as a
// Text pattern, so write Regex patterns lowercase when IgnoreCase is set.
func (c *Command) matchesPattern(command string) bool {
	candidate := command
	if c.IgnoreCase {
		candidate = strings.ToLower(candidate)
	}
	for _, p := range c.Patterns {
		if p.Regex != nil {
			if p.Regex.MatchString(candidate) {
				return true
			}
			continue
		}
		want := p.Text
		if c.IgnoreCase {
			want = strings.ToLower(want)
		}
		if candidate == want {
			return true
		}
	}
	return false
}

// AsFilter adapts Command to the event.Filter function signature.
func (c *Command) AsFilter() event.Filter {
	return c.Check
}
