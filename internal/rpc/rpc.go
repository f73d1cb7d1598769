package rpc

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	gethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	gethRpc "github.com/ethereum/go-ethereum/rpc"
	"github.com/rs/zerolog/log"
	config "github.com/thirdweb-dev/inspector/configs"
	"github.com/thirdweb-dev/inspector/internal/common"
	"github.com/thirdweb-dev/inspector/internal/metrics"
	"go.uber.org/ratelimit"
)

// IChainSource is the read-only view of the chain the enrichment pipeline relies on.
type IChainSource interface {
	GetLatestBlock(ctx context.Context) (common.Block, error)
	// GetTransaction returns nil without an error when the node does not know the hash.
	GetTransaction(ctx context.Context, txHash string) (*common.Transaction, error)
	GetCode(ctx context.Context, address gethCommon.Address) ([]byte, error)
	CallContract(ctx context.Context, contract *common.ContractHandle, method string, args ...interface{}) ([]interface{}, error)
	GetChainID() *big.Int
	// GetURL returns the endpoint without credentials or path, safe to log.
	GetURL() string
	IsWebsocket() bool
	Close()
}

type Client struct {
	RPCClient   *gethRpc.Client
	EthClient   *ethclient.Client
	isWebsocket bool
	url         string
	chainID     *big.Int
	timeout     time.Duration
	limiter     ratelimit.Limiter
}

func Initialize() (IChainSource, error) {
	rpcUrl := config.Cfg.RPC.URL
	if rpcUrl == "" {
		return nil, fmt.Errorf("RPC_URL environment variable is not set")
	}
	return InitializeWithUrl(rpcUrl, GetCallTimeout(), config.Cfg.RPC.RateLimit)
}

func InitializeWithUrl(url string, timeout time.Duration, rateLimit int) (IChainSource, error) {
	log.Debug().Msg("Initializing RPC")
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	rpcClient, dialErr := gethRpc.DialContext(ctx, url)
	if dialErr != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", redactURL(url), dialErr)
	}

	ethClient := ethclient.NewClient(rpcClient)

	rpc := &Client{
		RPCClient:   rpcClient,
		EthClient:   ethClient,
		url:         url,
		isWebsocket: strings.HasPrefix(url, "ws://") || strings.HasPrefix(url, "wss://"),
		timeout:     timeout,
		limiter:     newLimiter(rateLimit),
	}

	chainIdErr := rpc.setChainID(context.Background())
	if chainIdErr != nil {
		rpc.Close()
		return nil, chainIdErr
	}
	return IChainSource(rpc), nil
}

func (rpc *Client) GetChainID() *big.Int {
	return rpc.chainID
}

func (rpc *Client) GetURL() string {
	return redactURL(rpc.url)
}

func (rpc *Client) IsWebsocket() bool {
	return rpc.isWebsocket
}

func (rpc *Client) Close() {
	rpc.EthClient.Close()
}

func (rpc *Client) setChainID(ctx context.Context) error {
	ctx, cancel := rpc.withTimeout(ctx)
	defer cancel()
	started := time.Now()
	chainID, err := rpc.EthClient.ChainID(ctx)
	metrics.ObserveRPC("eth_chainId", err, started)
	if err != nil {
		return fmt.Errorf("failed to get chain ID: %v", err)
	}
	rpc.chainID = chainID
	config.Cfg.RPC.ChainID = chainID.String()
	return nil
}

func (rpc *Client) GetLatestBlock(ctx context.Context) (common.Block, error) {
	ctx, cancel := rpc.withTimeout(ctx)
	defer cancel()
	started := time.Now()
	var rawBlock common.RawBlock
	err := rpc.RPCClient.CallContext(ctx, &rawBlock, "eth_getBlockByNumber", GetLatestBlockParams()...)
	metrics.ObserveRPC("eth_getBlockByNumber", err, started)
	if err != nil {
		return common.Block{}, fmt.Errorf("failed to get latest block: %w", err)
	}
	if rawBlock == nil {
		return common.Block{}, fmt.Errorf("received a nil block result from RPC")
	}
	return SerializeBlock(rawBlock), nil
}

func (rpc *Client) GetTransaction(ctx context.Context, txHash string) (*common.Transaction, error) {
	ctx, cancel := rpc.withTimeout(ctx)
	defer cancel()
	started := time.Now()
	var rawTx common.RawTransaction
	err := rpc.RPCClient.CallContext(ctx, &rawTx, "eth_getTransactionByHash", GetTransactionParams(txHash)...)
	metrics.ObserveRPC("eth_getTransactionByHash", err, started)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction %s: %w", txHash, err)
	}
	if rawTx == nil {
		return nil, nil
	}
	tx, err := SerializeTransaction(rawTx)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize transaction %s: %w", txHash, err)
	}
	return tx, nil
}

func (rpc *Client) GetCode(ctx context.Context, address gethCommon.Address) ([]byte, error) {
	ctx, cancel := rpc.withTimeout(ctx)
	defer cancel()
	started := time.Now()
	code, err := rpc.EthClient.CodeAt(ctx, address, nil)
	metrics.ObserveRPC("eth_getCode", err, started)
	if err != nil {
		return nil, fmt.Errorf("failed to get code at %s: %w", address.Hex(), err)
	}
	return code, nil
}

func (rpc *Client) CallContract(ctx context.Context, contract *common.ContractHandle, method string, args ...interface{}) ([]interface{}, error) {
	ctx, cancel := rpc.withTimeout(ctx)
	defer cancel()
	started := time.Now()
	bound := bind.NewBoundContract(contract.Address, *contract.ABI, rpc.EthClient, nil, nil)
	var out []interface{}
	err := bound.Call(&bind.CallOpts{Context: ctx}, &out, method, args...)
	metrics.ObserveRPC("eth_call", err, started)
	if err != nil {
		return nil, fmt.Errorf("failed to call %s on %s: %w", method, contract.Address.Hex(), err)
	}
	return out, nil
}

// withTimeout waits for the rate limiter and bounds the call that follows.
func (rpc *Client) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	rpc.limiter.Take()
	if rpc.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, rpc.timeout)
}
