// Package oracle provides decision-oracle adapters over LLM providers. Each
// adapter is a plain prompt-in, text-out call; the protocol layer owns what
// the prompt says and how the reply is interpreted.
package oracle
