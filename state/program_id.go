package state

import "github.com/gagliardetto/solana-go"

// ProgramID is the LP token program address on mainnet.
var ProgramID = solana.MustPublicKeyFromBase58("HTBzkQCWc2sbkn5WmLkPmQKKotaeeWgZ3RSD4Eg3f1MS")

// LpTokenDecimals is the precision of every LP token mint the program creates.
const LpTokenDecimals = 6
