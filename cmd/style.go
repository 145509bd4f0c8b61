package main

import (
	"strconv"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/health-ledger/domain/contest"
	"github.com/luca-patrignani/health-ledger/domain/health"
	"github.com/luca-patrignani/health-ledger/ledger"
)

func chainTable(records []ledger.Record) (string, error) {
	data := pterm.TableData{{"#", "Timestamp", "Sender", "Receiver", "Health Change", "Message", "Hash", "Previous Hash"}}
	for _, r := range records {
		data = append(data, []string{
			strconv.FormatUint(r.Index, 10),
			r.Timestamp,
			r.Sender,
			r.Receiver,
			strconv.FormatInt(r.Amount, 10),
			r.Message,
			shortHash(r.Hash),
			shortHash(r.PrevHash),
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(data).Srender()
}

func balanceTable(participants []health.Participant) (string, error) {
	data := pterm.TableData{{"Participant", "Health"}}
	for _, p := range participants {
		data = append(data, []string{p.ID, strconv.FormatInt(p.Balance, 10)})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
}

func validityLine(valid bool) string {
	if valid {
		return pterm.LightGreen("Ledger is valid")
	}
	return pterm.LightRed("Ledger is NOT valid")
}

func showdownPanel(res contest.Result) string {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	info := ""
	for _, h := range res.Hands {
		info += pterm.Sprintfln("%s: %s", pterm.LightCyan(h.Player), h.Description)
	}
	if res.CoinFlip {
		info += pterm.Sprintfln("Tied after %d redeals, coin flip won by %s", res.Redeals, pterm.LightGreen(res.Winner))
	} else {
		info += pterm.Sprintfln("%s wins", pterm.LightGreen(res.Winner))
	}
	return pbox.WithTitle(pterm.LightYellow("|SHOWDOWN|")).WithTitleTopCenter().Sprint(info)
}

// shortHash keeps tables readable; the JSON output carries full hashes.
func shortHash(h string) string {
	if len(h) <= 16 {
		return h
	}
	return h[:16] + "…"
}
