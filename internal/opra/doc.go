/*
Opra decodes OPRA market data feed blocks: big-endian, variable-length
binary messages reporting options trades, quotes and administrative
events across exchange participants.

# Module
  - block: top-level driver, walks one feed block buffer
  - message: fixed 12-byte header plus category-specific payload
  - appendage: trailing best-bid/best-offer sub-records on quote messages
  - price: scaled fixed-point values keyed by denominator code
  - tables: category, type, participant and indicator descriptions

# Source
  - one immutable byte buffer per call (UDP payload, capture record or fixture)

# Produce
  - a decoded Block plus advisory anomalies; no side effects, no retained
    references into the input

# Sharded
  - none; calls are stateless and safe to run concurrently on independent buffers
*/
package opra
