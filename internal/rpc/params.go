package rpc

func GetLatestBlockParams() []interface{} {
	return []interface{}{"latest", false}
}

func GetTransactionParams(txHash string) []interface{} {
	return []interface{}{txHash}
}
