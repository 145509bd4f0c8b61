package contest

import (
	"crypto/cipher"
	"fmt"
	"io"
	"math/big"

	"github.com/paulhankin/poker"
	"go.dedis.ch/kyber/v4/util/random"
)

// DefaultMaxRedeals bounds how many times a tied showdown is dealt again
// before a coin flip settles it.
const DefaultMaxRedeals = 5

const deckSize = 52

// Hand is the final 7-card hand of one competitor: the shared board plus
// the two hole cards.
type Hand struct {
	Player      string
	Cards       [7]poker.Card
	Score       int16
	Description string
}

// Result describes a settled showdown.
type Result struct {
	Winner  string
	Loser   string
	Hands   [2]Hand // in competitor order (a, b) of the last deal
	Redeals int
	// CoinFlip is true when every deal tied and the winner was drawn.
	CoinFlip bool
}

// Showdown settles a competition with a heads-up Texas Hold'em hand.
// It is not safe for concurrent use.
type Showdown struct {
	stream     cipher.Stream
	deck       [deckSize]poker.Card
	coin       *CoinFlip
	MaxRedeals int
	// OnDeal, when set, is called with every settled showdown.
	OnDeal func(Result)
}

// NewShowdown creates a Showdown shuffling with randomness drawn from the
// given readers, or from crypto/rand when none is given.
func NewShowdown(readers ...io.Reader) (*Showdown, error) {
	s := &Showdown{
		stream:     random.New(readers...),
		MaxRedeals: DefaultMaxRedeals,
	}
	s.coin = &CoinFlip{stream: s.stream}

	i := 0
	for suit := 0; suit < 4; suit++ {
		for rank := 1; rank <= 13; rank++ {
			c, err := poker.MakeCard(poker.Suit(suit), poker.Rank(rank))
			if err != nil {
				return nil, fmt.Errorf("invalid card %d, %d: %w", suit, rank, err)
			}
			s.deck[i] = c
			i++
		}
	}
	return s, nil
}

// PickWinner deals a showdown and returns its winner. If the hands cannot
// be described the winner is drawn with a coin flip.
func (s *Showdown) PickWinner(a, b string) string {
	res, err := s.Deal(a, b)
	if err != nil {
		return s.coin.PickWinner(a, b)
	}
	return res.Winner
}

// Deal shuffles the deck, deals a board and two hole cards to each
// competitor and compares the resulting hands. The higher score wins;
// ties are dealt again up to MaxRedeals times.
func (s *Showdown) Deal(a, b string) (Result, error) {
	var res Result
	for {
		hands, err := s.deal(a, b)
		if err != nil {
			return Result{}, err
		}
		res.Hands = hands

		switch {
		case hands[0].Score > hands[1].Score:
			res.Winner, res.Loser = a, b
		case hands[1].Score > hands[0].Score:
			res.Winner, res.Loser = b, a
		case res.Redeals < s.MaxRedeals:
			res.Redeals++
			continue
		default:
			res.CoinFlip = true
			res.Winner = s.coin.PickWinner(a, b)
			res.Loser = a
			if res.Winner == a {
				res.Loser = b
			}
		}
		break
	}

	if s.OnDeal != nil {
		s.OnDeal(res)
	}
	return res, nil
}

func (s *Showdown) deal(a, b string) ([2]Hand, error) {
	cards := s.shuffle()

	var hands [2]Hand
	for i, player := range []string{a, b} {
		h := Hand{Player: player}
		copy(h.Cards[:5], cards[:5])
		h.Cards[5] = cards[5+2*i]
		h.Cards[6] = cards[6+2*i]
		h.Score = poker.Eval7(&h.Cards)

		desc, err := poker.Describe(h.Cards[:])
		if err != nil {
			return [2]Hand{}, fmt.Errorf("describe hand of %s: %w", player, err)
		}
		h.Description = desc
		hands[i] = h
	}
	return hands, nil
}

// shuffle returns a Fisher-Yates permutation of the deck.
func (s *Showdown) shuffle() [deckSize]poker.Card {
	cards := s.deck
	for i := deckSize - 1; i > 0; i-- {
		j := random.Int(big.NewInt(int64(i+1)), s.stream).Int64()
		cards[i], cards[j] = cards[j], cards[i]
	}
	return cards
}
