// Interactive terminal front end for the ledger. Parses whitespace-delimited
// commands, prints results as JSON, and on any failure prints the error and
// keeps the loop running.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"coopledger/internal/bootstrap"
	"coopledger/internal/ledger"
	"coopledger/pkg/config"
	"coopledger/pkg/logger"
	"go.uber.org/zap"
)

const usage = `Commands:
 1) create_user <username> [guiding_value ...]
 2) list_users
 3) get_user <user_id>
 4) create_element <title> [type]
 5) list_elements
 6) get_element <element_id>
 7) search_elements <query>
 8) link_elements <element_id_1> <element_id_2>
 9) create_action <user_id> <element_id|-> <action_type> <content...>
10) list_actions
11) get_action <action_id>
12) vote_action <action_id> <user_id> <vote_value>
13) decision_outcome <action_id>
    help
    exit`

func main() {
	// Initialize logger
	if err := logger.Init(os.Getenv("ENV")); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Sync()

	log := logger.Get()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	led, cleanup, err := bootstrap.BuildLedger(cfg, log)
	if err != nil {
		log.Fatal("Failed to initialize ledger", zap.Error(err))
	}
	defer cleanup()

	fmt.Println("=== CLI Mode ===")
	fmt.Println(usage)

	scanner := bufio.NewScanner(os.Stdin)
	ctx := context.Background()

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		cmd := strings.Fields(scanner.Text())
		if len(cmd) == 0 {
			continue
		}

		if cmd[0] == "exit" || cmd[0] == "0" {
			fmt.Println("Exiting CLI.")
			break
		}

		if err := dispatch(ctx, led, cmd); err != nil {
			fmt.Println("Error:", err)
		}
	}
}

func dispatch(ctx context.Context, led *ledger.Ledger, cmd []string) error {
	switch cmd[0] {
	case "help":
		fmt.Println(usage)

	case "create_user":
		if len(cmd) < 2 {
			return fmt.Errorf("usage: create_user <username> [guiding_value ...]")
		}
		user, err := led.CreateUser(ctx, cmd[1], cmd[2:])
		if err != nil {
			return err
		}
		return printJSON("Created user:", user)

	case "list_users":
		users, err := led.ListUsers(ctx)
		if err != nil {
			return err
		}
		return printJSON("Users:", users)

	case "get_user":
		if len(cmd) < 2 {
			return fmt.Errorf("usage: get_user <user_id>")
		}
		user, err := led.GetUser(ctx, cmd[1])
		if err != nil {
			return err
		}
		return printJSON("User:", user)

	case "create_element":
		if len(cmd) < 2 {
			return fmt.Errorf("usage: create_element <title> [type]")
		}
		elementType := ""
		if len(cmd) > 2 {
			elementType = cmd[2]
		}
		element, err := led.CreateElement(ctx, cmd[1], elementType)
		if err != nil {
			return err
		}
		return printJSON("Created element:", element)

	case "list_elements":
		elements, err := led.ListElements(ctx)
		if err != nil {
			return err
		}
		return printJSON("Elements:", elements)

	case "get_element":
		if len(cmd) < 2 {
			return fmt.Errorf("usage: get_element <element_id>")
		}
		element, err := led.GetElement(ctx, cmd[1])
		if err != nil {
			return err
		}
		return printJSON("Element:", element)

	case "search_elements":
		if len(cmd) < 2 {
			return fmt.Errorf("usage: search_elements <query>")
		}
		results, err := led.SearchElements(ctx, strings.Join(cmd[1:], " "))
		if err != nil {
			return err
		}
		return printJSON("Results:", results)

	case "link_elements":
		if len(cmd) < 3 {
			return fmt.Errorf("usage: link_elements <element_id_1> <element_id_2>")
		}
		if err := led.LinkElements(ctx, cmd[1], cmd[2]); err != nil {
			return err
		}
		fmt.Printf("Linked elements %s and %s.\n", cmd[1], cmd[2])

	case "create_action":
		if len(cmd) < 5 {
			return fmt.Errorf("usage: create_action <user_id> <element_id|-> <action_type> <content...>")
		}
		elementID := cmd[2]
		if elementID == "-" {
			elementID = ""
		}
		action, err := led.CreateAction(ctx, cmd[1], elementID, cmd[3], strings.Join(cmd[4:], " "), nil)
		if err != nil {
			return err
		}
		return printJSON("Created action:", action)

	case "list_actions":
		actions, err := led.ListActions(ctx)
		if err != nil {
			return err
		}
		return printJSON("Actions:", actions)

	case "get_action":
		if len(cmd) < 2 {
			return fmt.Errorf("usage: get_action <action_id>")
		}
		action, err := led.GetAction(ctx, cmd[1])
		if err != nil {
			return err
		}
		return printJSON("Action:", action)

	case "vote_action":
		if len(cmd) < 4 {
			return fmt.Errorf("usage: vote_action <action_id> <user_id> <vote_value>")
		}
		value, err := strconv.Atoi(cmd[3])
		if err != nil {
			return fmt.Errorf("vote value must be an integer: %w", err)
		}
		action, err := led.Vote(ctx, cmd[1], cmd[2], value)
		if err != nil {
			return err
		}
		return printJSON("Action updated:", action)

	case "decision_outcome":
		if len(cmd) < 2 {
			return fmt.Errorf("usage: decision_outcome <action_id>")
		}
		outcome, err := led.DecisionOutcome(ctx, cmd[1])
		if err != nil {
			return err
		}
		return printJSON("Decision outcome:", outcome)

	default:
		fmt.Println("Unknown command. Type 'help' for the command list.")
	}
	return nil
}

func printJSON(label string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(label)
	fmt.Println(string(data))
	return nil
}
