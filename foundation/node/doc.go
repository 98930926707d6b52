/*
Package node implements a single mining node. The node owns one chain and
runs an endless loop of mining rounds, each round finding the next block,
pacing the chain to the configured delay and reporting the chain tail.

READING AND NOTES

- Articles
[Ethereum Mining](https://ethereum.org/en/developers/docs/consensus-mechanisms/pow/mining/) - Ethereum Website
[Bitcoin Proof of Work](https://developer.bitcoin.org/devguide/block_chain.html#proof-of-work) - Bitcoin Developer Guide
*/
package node
