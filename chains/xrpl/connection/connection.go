// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package connection

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ChainSafe/nft-bridge/chains"
	"github.com/ChainSafe/nft-bridge/chains/xrpl/address"
)

type Opts struct {
	// MaxFee caps the transaction fee in drops.
	MaxFee int64
	// LedgerOffset is added to the validated ledger index to
	// produce LastLedgerSequence.
	LedgerOffset uint32
	PollInterval time.Duration
	PingInterval time.Duration
	WriteTimeout time.Duration
}

func DefaultOpts() Opts {
	return Opts{
		MaxFee:       2000,
		LedgerOffset: 20,
		PollInterval: time.Second,
		PingInterval: 30 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
}

type response struct {
	ID           uint64          `json:"id"`
	Status       string          `json:"status"`
	Type         string          `json:"type"`
	Result       json.RawMessage `json:"result"`
	Error        string          `json:"error"`
	ErrorMessage string          `json:"error_message"`
}

// Connection is a websocket session with a ledger node bound to a single
// custodial account.
type Connection struct {
	endpoint string
	network  string
	wallet   *address.Wallet
	opts     Opts
	log      zerolog.Logger

	conn      *websocket.Conn
	writeMu   sync.Mutex
	requestID atomic.Uint64
	connected atomic.Bool
	closed    atomic.Bool

	pending   map[uint64]chan *response
	pendingMu sync.Mutex

	done chan struct{}
	wg   sync.WaitGroup
}

// NewConnection dials the ledger node and starts the response dispatcher.
// A failed dial is returned immediately.
func NewConnection(ctx context.Context, endpoint string, network string, wallet *address.Wallet, opts Opts) (*Connection, error) {
	if wallet == nil {
		return nil, fmt.Errorf("connection requires a wallet")
	}

	dialer := websocket.Dialer{
		HandshakeTimeout: 10 * time.Second,
	}
	conn, _, err := dialer.DialContext(ctx, endpoint, nil)
	if err != nil {
		return nil, &chains.NetworkError{Op: "dial", Err: err}
	}

	c := &Connection{
		endpoint: endpoint,
		network:  network,
		wallet:   wallet,
		opts:     opts,
		log:      log.With().Str("chain", "xrpl").Str("account", wallet.Address).Logger(),
		conn:     conn,
		pending:  make(map[uint64]chan *response),
		done:     make(chan struct{}),
	}
	c.connected.Store(true)

	c.wg.Add(1)
	go c.readLoop()
	if opts.PingInterval > 0 {
		c.wg.Add(1)
		go c.pingLoop()
	}

	c.log.Info().Msgf("Connected to ledger node %s", endpoint)
	return c, nil
}

func (c *Connection) Account() string {
	return c.wallet.Address
}

func (c *Connection) Network() string {
	return c.network
}

func (c *Connection) Endpoint() string {
	return c.endpoint
}

func (c *Connection) IsConnected() bool {
	return c.connected.Load() && !c.closed.Load()
}

// Request sends a command to the ledger node and decodes the result of
// the matching response into result.
func (c *Connection) Request(ctx context.Context, command string, params map[string]interface{}, result interface{}) error {
	if !c.IsConnected() {
		return &chains.NetworkError{Op: command, Err: fmt.Errorf("connection to %s is closed", c.endpoint)}
	}

	id := c.requestID.Add(1)
	msg := make(map[string]interface{}, len(params)+2)
	for k, v := range params {
		msg[k] = v
	}
	msg["id"] = id
	msg["command"] = command

	respCh := make(chan *response, 1)
	c.pendingMu.Lock()
	c.pending[id] = respCh
	c.pendingMu.Unlock()
	defer c.removePending(id)

	c.writeMu.Lock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(c.opts.WriteTimeout))
	err := c.conn.WriteJSON(msg)
	c.writeMu.Unlock()
	if err != nil {
		return &chains.NetworkError{Op: command, Err: err}
	}

	select {
	case resp, ok := <-respCh:
		if !ok {
			return &chains.NetworkError{Op: command, Err: fmt.Errorf("connection closed before response")}
		}
		if resp.Status == "error" || resp.Error != "" {
			return &chains.LedgerRequestError{Code: resp.Error, Message: resp.ErrorMessage}
		}
		if result == nil {
			return nil
		}
		if err := json.Unmarshal(resp.Result, result); err != nil {
			return fmt.Errorf("failed decoding %s result: %w", command, err)
		}
		return nil
	case <-ctx.Done():
		return &chains.NetworkError{Op: command, Err: ctx.Err()}
	case <-c.done:
		return &chains.NetworkError{Op: command, Err: fmt.Errorf("connection closed")}
	}
}

// Close closes the websocket connection and fails every pending request.
func (c *Connection) Close() error {
	if c.closed.Swap(true) {
		return nil
	}
	close(c.done)

	c.writeMu.Lock()
	_ = c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	c.writeMu.Unlock()
	err := c.conn.Close()

	c.failPending()
	c.wg.Wait()
	return err
}

func (c *Connection) readLoop() {
	defer c.wg.Done()

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if !c.closed.Load() {
				c.log.Error().Err(err).Msg("Ledger connection lost")
			}
			c.connected.Store(false)
			c.failPending()
			return
		}

		resp := &response{}
		if err := json.Unmarshal(message, resp); err != nil {
			c.log.Warn().Err(err).Msg("Failed decoding ledger message")
			continue
		}
		if resp.Type != "" && resp.Type != "response" {
			// stream messages are not requested by this session
			continue
		}

		c.pendingMu.Lock()
		ch, ok := c.pending[resp.ID]
		if ok {
			delete(c.pending, resp.ID)
		}
		c.pendingMu.Unlock()
		if ok {
			ch <- resp
		}
	}
}

func (c *Connection) pingLoop() {
	defer c.wg.Done()

	ticker := time.NewTicker(c.opts.PingInterval)
	defer ticker.Stop()
	for {
		select {
		case <-c.done:
			return
		case <-ticker.C:
			err := c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(c.opts.WriteTimeout))
			if err != nil {
				c.log.Warn().Err(err).Msg("Failed sending ping")
			}
		}
	}
}

func (c *Connection) removePending(id uint64) {
	c.pendingMu.Lock()
	delete(c.pending, id)
	c.pendingMu.Unlock()
}

func (c *Connection) failPending() {
	c.pendingMu.Lock()
	defer c.pendingMu.Unlock()
	for id, ch := range c.pending {
		close(ch)
		delete(c.pending, id)
	}
}
