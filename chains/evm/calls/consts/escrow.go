package consts

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

var EscrowABI, _ = abi.JSON(strings.NewReader(`
[
  {
    "inputs": [
      {"internalType": "bytes32", "name": "hashLock", "type": "bytes32"},
      {"internalType": "uint256", "name": "timeLock", "type": "uint256"},
      {"internalType": "address", "name": "taker", "type": "address"},
      {"internalType": "string", "name": "suiOrderHash", "type": "string"}
    ],
    "name": "createEscrow",
    "outputs": [{"internalType": "bytes32", "name": "", "type": "bytes32"}],
    "stateMutability": "payable",
    "type": "function"
  },
  {
    "inputs": [
      {"internalType": "bytes32", "name": "escrowId", "type": "bytes32"},
      {"internalType": "uint256", "name": "amount", "type": "uint256"},
      {"internalType": "bytes32", "name": "secret", "type": "bytes32"}
    ],
    "name": "fillEscrow",
    "outputs": [],
    "stateMutability": "nonpayable",
    "type": "function"
  },
  {
    "inputs": [{"internalType": "bytes32", "name": "escrowId", "type": "bytes32"}],
    "name": "refundEscrow",
    "outputs": [],
    "stateMutability": "nonpayable",
    "type": "function"
  },
  {
    "inputs": [{"internalType": "bytes32", "name": "escrowId", "type": "bytes32"}],
    "name": "getEscrow",
    "outputs": [
      {"internalType": "address", "name": "maker", "type": "address"},
      {"internalType": "address", "name": "taker", "type": "address"},
      {"internalType": "uint256", "name": "totalAmount", "type": "uint256"},
      {"internalType": "uint256", "name": "remainingAmount", "type": "uint256"},
      {"internalType": "bytes32", "name": "hashLock", "type": "bytes32"},
      {"internalType": "uint256", "name": "timeLock", "type": "uint256"},
      {"internalType": "bool", "name": "completed", "type": "bool"},
      {"internalType": "bool", "name": "refunded", "type": "bool"},
      {"internalType": "uint256", "name": "createdAt", "type": "uint256"},
      {"internalType": "string", "name": "suiOrderHash", "type": "string"}
    ],
    "stateMutability": "view",
    "type": "function"
  },
  {
    "anonymous": false,
    "inputs": [
      {"indexed": true, "internalType": "bytes32", "name": "escrowId", "type": "bytes32"},
      {"indexed": true, "internalType": "address", "name": "maker", "type": "address"},
      {"indexed": true, "internalType": "address", "name": "taker", "type": "address"},
      {"indexed": false, "internalType": "uint256", "name": "amount", "type": "uint256"},
      {"indexed": false, "internalType": "bytes32", "name": "hashLock", "type": "bytes32"},
      {"indexed": false, "internalType": "uint256", "name": "timeLock", "type": "uint256"},
      {"indexed": false, "internalType": "string", "name": "suiOrderHash", "type": "string"}
    ],
    "name": "EscrowCreated",
    "type": "event"
  },
  {
    "anonymous": false,
    "inputs": [
      {"indexed": true, "internalType": "bytes32", "name": "escrowId", "type": "bytes32"},
      {"indexed": true, "internalType": "address", "name": "resolver", "type": "address"},
      {"indexed": false, "internalType": "uint256", "name": "amount", "type": "uint256"},
      {"indexed": false, "internalType": "uint256", "name": "remainingAmount", "type": "uint256"},
      {"indexed": false, "internalType": "bytes32", "name": "secret", "type": "bytes32"},
      {"indexed": false, "internalType": "string", "name": "suiOrderHash", "type": "string"}
    ],
    "name": "EscrowPartiallyFilled",
    "type": "event"
  },
  {
    "anonymous": false,
    "inputs": [
      {"indexed": true, "internalType": "bytes32", "name": "escrowId", "type": "bytes32"},
      {"indexed": true, "internalType": "address", "name": "lastResolver", "type": "address"},
      {"indexed": false, "internalType": "bytes32", "name": "secret", "type": "bytes32"},
      {"indexed": false, "internalType": "string", "name": "suiOrderHash", "type": "string"}
    ],
    "name": "EscrowCompleted",
    "type": "event"
  }
]
`))
