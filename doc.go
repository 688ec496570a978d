// Package dbpager provides offset pagination adapters for GORM queries.
//
// Overview
//
// An Adapter reports the total number of rows of a result set and returns a
// window of it. Two adapters are provided:
//   - SelectAdapter: paginates an arbitrary *gorm.DB query. The total is read
//     from a count query derived from it (columns replaced by
//     COUNT(*) AS C, ORDER BY, LIMIT and OFFSET removed) or from an explicit
//     count query for GROUP BY and DISTINCT queries.
//   - TableGatewayAdapter: paginates a TableGateway, optionally narrowed with
//     WHERE, GROUP BY, HAVING and ORDER BY settings.
//
// Key concepts
//   - Executor: runs page and count queries, on the query connection or on
//     an explicit gorm.ConnPool.
//   - Row: a result row keyed by column name. The row count column is looked
//     up exactly first and case-insensitively second.
//   - Paginator: numbered pages and OffsetToken continuation tokens on top of
//     any Adapter.
//
// The base query passed to an adapter is never modified.
package dbpager
