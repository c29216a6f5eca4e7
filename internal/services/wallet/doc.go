/*
Package wallet is the single authority over customer wallet balances.

All balance-affecting operations (top-ups and purchases) flow through this
service, which guarantees:

  - per-customer serialization: an in-process keyed mutex is held across the
    whole read-check-write sequence, and the database row is additionally
    locked FOR UPDATE inside the transaction so concurrent processes cannot
    interleave either;
  - atomicity: a purchase inserts the order and decrements the balance inside
    one database transaction, so no partial state is ever visible;
  - the balance never goes negative: purchases are rejected with
    INSUFFICIENT_FUNDS when the discounted price exceeds the balance.

The funds check runs against the net (discounted) price, since that is what
is actually charged.
*/
package wallet
